package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
		ShutdownTimeout           int
	}

	PostgresDB struct {
		Port                   string
		Host                   string
		DBName                 string
		Username               string
		Password               string
		MaxOpenConnections     int
		MaxIdleConnections     int
		ConnMaxLifetimeMinutes int
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

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
