package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
    storage_key          TEXT PRIMARY KEY,
    body                 TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
    id                   TEXT PRIMARY KEY,
    kind                 TEXT NOT NULL,
    detail               TEXT,
    xp                   INTEGER NOT NULL DEFAULT 0,
    level                INTEGER NOT NULL DEFAULT 1,
    at                   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_at ON events(at);
`
