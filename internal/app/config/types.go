package config

type (
	InternalConfig struct {
		App     App
		Backend Backend
		Demo    Demo
	}

	DriverConfig struct {
		SQLite SQLite
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env string
		// TokenStoreBackend selects where bearer tokens persist between
		// invocations: "sqlite" (default) or "redis".
		TokenStoreBackend string
		// RequestTimeoutInSeconds of 0 leaves requests without a deadline,
		// matching the browser client this tool replaces.
		RequestTimeoutInSeconds int
	}

	Backend struct {
		BaseUrl string
	}

	// Demo gates the admin fallbacks: a local credential pair accepted when
	// the backend rejects the admin login, and canned sample data shown when
	// an admin fetch fails. Both are disabled unless Enabled is set.
	Demo struct {
		Enabled             bool
		AdminUsername       string
		AdminPasswordHash   string
		JWTSecret           string
		TokenExpTimeInHours int
	}

	SQLite struct {
		Path string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
