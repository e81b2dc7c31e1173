package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// CredentialIssueError represents a failure to issue an upstream credential.
	CredentialIssueError ErrorCode = "credential_issue_error"
	// CredentialRateLimitError represents an upstream rate-limit response during issuance.
	CredentialRateLimitError ErrorCode = "credential_rate_limit_error"

	// UpstreamRequestError represents a failed request to an upstream quote provider.
	UpstreamRequestError ErrorCode = "upstream_request_error"
	// UpstreamPayloadError represents a malformed payload from an upstream quote provider.
	UpstreamPayloadError ErrorCode = "upstream_payload_error"

	// WebSocketConnectError represents a failure to establish a streaming session.
	WebSocketConnectError ErrorCode = "websocket_connect_error"
	// WebSocketSendError represents a failure to write to a streaming session.
	WebSocketSendError ErrorCode = "websocket_send_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
)
