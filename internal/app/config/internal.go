package config

import "time"

type InternalConfig struct {
	App           App              `mapstructure:"app"`
	FHIR          AppFHIR          `mapstructure:"fhir"`
	JWT           AppJWT           `mapstructure:"jwt"`
	RabbitMQ      AppRabbitMQ      `mapstructure:"rabbitmq"`
	Questionnaire AppQuestionnaire `mapstructure:"questionnaire"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

type AppFHIR struct {
	BaseUrl     string `mapstructure:"base_url"`
	AccessToken string `mapstructure:"access_token"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppRabbitMQ struct {
	QuestionnaireResponseQueue string `mapstructure:"questionnaire_response_queue"`
}

type AppQuestionnaire struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SubmitLockTTL time.Duration `mapstructure:"submit_lock_ttl"`
}
