package env

const (
	// Prefix is the env-var prefix shared by all commands
	Prefix = "UAHRATES"

	// DBURLSuffix holds the PostgreSQL connection string
	DBURLSuffix = "_DB_URL"
)
