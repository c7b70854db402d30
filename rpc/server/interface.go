package server

// Names under which the functions are registered with the host
const (
	FnSet        = "redis_set"
	FnSAdd       = "redis_sadd"
	FnSRem       = "redis_srem"
	FnServersSet = "redis_servers_set"
)
