// Schema DDL and the ordered migration list. Version 1 creates the full
// table set; later versions append additive DDL. Every statement in version
// 1 is idempotent CREATE TABLE IF NOT EXISTS.
package store

const createSchemaMigrations = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version INTEGER PRIMARY KEY NOT NULL,
    applied_at TEXT NOT NULL
);`

const (
	createPets = `CREATE TABLE IF NOT EXISTS Pet (
    id TEXT PRIMARY KEY NOT NULL,
    name TEXT NOT NULL,
    species TEXT NOT NULL,
    breed TEXT,
    sex TEXT,
    birthDate TEXT,
    weightKg REAL,
    neutered INTEGER,
    photoUri TEXT,
    createdAt TEXT NOT NULL
);`

	createActivityTemplates = `CREATE TABLE IF NOT EXISTS ActivityTemplate (
    id TEXT PRIMARY KEY NOT NULL,
    petId TEXT NOT NULL,
    title TEXT NOT NULL,
    icon TEXT,
    targetCountPerDay INTEGER,
    isTimer INTEGER,
    sortOrder INTEGER,
    FOREIGN KEY (petId) REFERENCES Pet(id) ON DELETE CASCADE
);`

	createActivityLogs = `CREATE TABLE IF NOT EXISTS ActivityLog (
    id TEXT PRIMARY KEY NOT NULL,
    petId TEXT NOT NULL,
    templateId TEXT NOT NULL,
    date TEXT NOT NULL,
    countIncrement INTEGER NOT NULL,
    durationSec INTEGER,
    createdAt TEXT NOT NULL,
    FOREIGN KEY (petId) REFERENCES Pet(id) ON DELETE CASCADE,
    FOREIGN KEY (templateId) REFERENCES ActivityTemplate(id) ON DELETE CASCADE
);`

	createReminders = `CREATE TABLE IF NOT EXISTS Reminder (
    id TEXT PRIMARY KEY NOT NULL,
    petId TEXT NOT NULL,
    title TEXT NOT NULL,
    type TEXT NOT NULL,
    datetime TEXT NOT NULL,
    notes TEXT,
    createdAt TEXT NOT NULL,
    FOREIGN KEY (petId) REFERENCES Pet(id) ON DELETE CASCADE
);`

	createVaccineRecords = `CREATE TABLE IF NOT EXISTS VaccineRecord (
    id TEXT PRIMARY KEY NOT NULL,
    petId TEXT NOT NULL,
    name TEXT NOT NULL,
    appliedAt TEXT NOT NULL,
    nextDoseAt TEXT,
    vetName TEXT,
    notes TEXT,
    createdAt TEXT NOT NULL,
    FOREIGN KEY (petId) REFERENCES Pet(id) ON DELETE CASCADE
);`

	createTutors = `CREATE TABLE IF NOT EXISTS Tutor (
    id TEXT PRIMARY KEY NOT NULL,
    petId TEXT NOT NULL,
    name TEXT NOT NULL,
    role TEXT,
    createdAt TEXT NOT NULL,
    FOREIGN KEY (petId) REFERENCES Pet(id) ON DELETE CASCADE
);`

	createMemories = `CREATE TABLE IF NOT EXISTS Memory (
    id TEXT PRIMARY KEY NOT NULL,
    petId TEXT NOT NULL,
    title TEXT,
    text TEXT NOT NULL,
    memoryDate TEXT NOT NULL,
    photoUri TEXT,
    createdAt TEXT NOT NULL,
    FOREIGN KEY (petId) REFERENCES Pet(id) ON DELETE CASCADE
);`
)

// migrations lists all schema versions in ascending order. Versions must be
// unique; Migrate applies each pending version in its own transaction with
// the schema_migrations insert as the final statement.
var migrations = []migration{
	{
		version: 1,
		statements: []string{
			createSchemaMigrations,
			createPets,
			createActivityTemplates,
			createActivityLogs,
			createReminders,
			createVaccineRecords,
			createTutors,
			createMemories,
		},
	},
}
