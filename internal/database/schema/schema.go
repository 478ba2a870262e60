package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Core User Information
-- User ids are opaque strings issued by the identity layer.
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    full_name VARCHAR(200) NOT NULL DEFAULT '',
    grade INTEGER NOT NULL DEFAULT 0,
    school_name VARCHAR(200) NOT NULL DEFAULT '',
    role VARCHAR(20) NOT NULL DEFAULT 'student',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Subject Zones
CREATE TABLE IF NOT EXISTS zones (
    zone_id TEXT PRIMARY KEY,
    zone_name VARCHAR(100) NOT NULL,
    description TEXT,
    zone_type VARCHAR(20) NOT NULL,
    allowed_slot_types TEXT[] NOT NULL DEFAULT '{}',
    unlock_level INTEGER NOT NULL DEFAULT 1
);

-- Catalog Items (seeds, raw materials, products, feed, boosters)
CREATE TABLE IF NOT EXISTS farm_items (
    item_id TEXT PRIMARY KEY,
    zone_id TEXT REFERENCES zones(zone_id) ON DELETE SET NULL,
    item_name VARCHAR(100) NOT NULL,
    icon_emoji VARCHAR(16) NOT NULL DEFAULT '',
    description TEXT,
    category VARCHAR(20) NOT NULL,
    production_time INTEGER NOT NULL DEFAULT 0,
    unlock_tasks_required INTEGER NOT NULL DEFAULT 0,
    sell_price_npc INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_farm_items_zone ON farm_items(zone_id, category, unlock_tasks_required);

-- Catalog Animals
CREATE TABLE IF NOT EXISTS farm_animals (
    animal_id TEXT PRIMARY KEY,
    zone_id TEXT NOT NULL REFERENCES zones(zone_id) ON DELETE CASCADE,
    animal_name VARCHAR(100) NOT NULL,
    icon_emoji VARCHAR(16) NOT NULL DEFAULT '',
    description TEXT,
    production_item_id TEXT NOT NULL REFERENCES farm_items(item_id),
    production_time INTEGER NOT NULL DEFAULT 3600,
    feed_item_id TEXT REFERENCES farm_items(item_id),
    max_happiness INTEGER NOT NULL DEFAULT 100,
    unlock_tasks_required INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_farm_animals_zone ON farm_animals(zone_id, unlock_tasks_required);

-- Production Chains and their ingredients
CREATE TABLE IF NOT EXISTS production_chains (
    chain_id TEXT PRIMARY KEY,
    zone_id TEXT NOT NULL REFERENCES zones(zone_id) ON DELETE CASCADE,
    chain_name VARCHAR(100) NOT NULL,
    output_item_id TEXT NOT NULL REFERENCES farm_items(item_id),
    output_quantity INTEGER NOT NULL DEFAULT 1,
    base_time INTEGER NOT NULL DEFAULT 0,
    unlock_tasks_required INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_production_chains_zone ON production_chains(zone_id, unlock_tasks_required);

CREATE TABLE IF NOT EXISTS chain_ingredients (
    chain_id TEXT NOT NULL REFERENCES production_chains(chain_id) ON DELETE CASCADE,
    item_id TEXT NOT NULL REFERENCES farm_items(item_id),
    quantity_needed INTEGER NOT NULL CHECK (quantity_needed > 0),
    PRIMARY KEY (chain_id, item_id)
);

-- User Inventory: one row per (user, item), quantity never negative.
CREATE TABLE IF NOT EXISTS user_inventory (
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    item_id TEXT NOT NULL REFERENCES farm_items(item_id),
    quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    PRIMARY KEY (user_id, item_id)
);

-- Placed Plants: slot unique per (user, zone).
CREATE TABLE IF NOT EXISTS user_plants (
    plant_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    zone_id TEXT NOT NULL REFERENCES zones(zone_id),
    slot_index INTEGER NOT NULL CHECK (slot_index >= 0 AND slot_index < 6),
    seed_item_id TEXT NOT NULL REFERENCES farm_items(item_id),
    planted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    needs_water BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (user_id, zone_id, slot_index)
);

-- Placed Animals
CREATE TABLE IF NOT EXISTS user_animals (
    placed_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    animal_id TEXT NOT NULL REFERENCES farm_animals(animal_id),
    happiness INTEGER NOT NULL DEFAULT 100,
    last_fed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_collected_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_user_animals_user ON user_animals(user_id, created_at);

-- Running Productions: slot unique per (user, zone).
CREATE TABLE IF NOT EXISTS user_productions (
    production_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    zone_id TEXT NOT NULL REFERENCES zones(zone_id),
    slot_index INTEGER NOT NULL CHECK (slot_index >= 0 AND slot_index < 3),
    chain_id TEXT NOT NULL REFERENCES production_chains(chain_id),
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    finish_at TIMESTAMPTZ NOT NULL,
    UNIQUE (user_id, zone_id, slot_index)
);

-- Zone Progress: one row per (user, zone), created on first completion.
CREATE TABLE IF NOT EXISTS user_progress (
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    zone_id TEXT NOT NULL REFERENCES zones(zone_id),
    tasks_completed INTEGER NOT NULL DEFAULT 0 CHECK (tasks_completed >= 0),
    experience INTEGER NOT NULL DEFAULT 0 CHECK (experience >= 0),
    level INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (user_id, zone_id)
);

-- Companion Pets: one per user.
CREATE TABLE IF NOT EXISTS user_pets (
    pet_id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
    pet_name VARCHAR(50) NOT NULL,
    pet_type VARCHAR(20) NOT NULL,
    hunger INTEGER NOT NULL DEFAULT 100 CHECK (hunger >= 0 AND hunger <= 100),
    thirst INTEGER NOT NULL DEFAULT 100 CHECK (thirst >= 0 AND thirst <= 100),
    happiness INTEGER NOT NULL DEFAULT 100 CHECK (happiness >= 0 AND happiness <= 100),
    last_fed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_watered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_played_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    ran_away_at TIMESTAMPTZ
);

-- Tasks and submissions
CREATE TABLE IF NOT EXISTS tasks (
    task_id TEXT PRIMARY KEY,
    zone_id TEXT NOT NULL REFERENCES zones(zone_id),
    title VARCHAR(200) NOT NULL,
    description TEXT,
    instructions TEXT,
    difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 4),
    experience_reward INTEGER NOT NULL DEFAULT 0 CHECK (experience_reward >= 0),
    required_level INTEGER NOT NULL DEFAULT 0,
    created_by TEXT NOT NULL REFERENCES users(user_id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_tasks_zone ON tasks(zone_id, created_at);

CREATE TABLE IF NOT EXISTS task_submissions (
    submission_id TEXT PRIMARY KEY,
    task_id TEXT NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    content TEXT NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    grade INTEGER CHECK (grade BETWEEN 1 AND 5),
    graded_by TEXT REFERENCES users(user_id),
    submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    graded_at TIMESTAMPTZ,
    UNIQUE (task_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_task_submissions_status ON task_submissions(status, submitted_at);
`
