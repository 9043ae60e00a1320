package constvars

const (
	SinkWebhook  = "webhook"
	SinkRabbitMQ = "rabbitmq"
	SinkMongo    = "mongo"
	SinkMinio    = "minio"
)

// Placeholder stored for every patient field the user left blank.
const PatientFieldNotInformed = "Não informado"

const (
	EmissionGuardKeyPrefix = "outcome:emitted:"
	OutcomeObjectPrefix    = "outcomes/"
	OutcomeObjectSuffix    = ".json"
)

const (
	WebhookJWTIssuer  = "outcomes-service"
	WebhookJWTSubject = "outcome-record"
)

const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)
