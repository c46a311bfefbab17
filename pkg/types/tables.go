package types

// Domain table names as they appear in the database file and in backup
// payloads.
const (
	TablePets              = "Pet"
	TableActivityTemplates = "ActivityTemplate"
	TableActivityLogs      = "ActivityLog"
	TableReminders         = "Reminder"
	TableVaccineRecords    = "VaccineRecord"
	TableTutors            = "Tutor"
	TableMemories          = "Memory"
)

// TablesParentFirst lists all domain tables in dependency order, parents
// before children, so foreign-key inserts succeed during import.
var TablesParentFirst = []string{
	TablePets,
	TableActivityTemplates,
	TableActivityLogs,
	TableReminders,
	TableVaccineRecords,
	TableTutors,
	TableMemories,
}

// TablesChildFirst lists all domain tables children before parents, the
// order rows must be deleted in when wiping the database.
var TablesChildFirst = []string{
	TableActivityLogs,
	TableActivityTemplates,
	TableReminders,
	TableVaccineRecords,
	TableTutors,
	TableMemories,
	TablePets,
}
