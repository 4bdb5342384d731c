package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Generations: every generation run, from preparation to save or failure
CREATE TABLE IF NOT EXISTS generations (
    generation_id TEXT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Request
    output_name TEXT NOT NULL,
    template_type TEXT NOT NULL,       -- concept-tutorial, strategic-framework
    model TEXT,

    -- Source material
    source_filename TEXT,
    source_format TEXT,                -- markdown, transcript, text
    source_word_count INTEGER DEFAULT 0,

    -- Outcome
    status TEXT NOT NULL,              -- prepared, saved, failed
    beat_id TEXT,
    output_dir TEXT,
    validation_error_count INTEGER DEFAULT 0,
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_generations_status ON generations(status);
CREATE INDEX IF NOT EXISTS idx_generations_beat ON generations(beat_id);
CREATE INDEX IF NOT EXISTS idx_generations_template ON generations(template_type);
`
