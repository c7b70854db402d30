// Package unix implements the Unix domain socket connector for the dialers of this
// module. It is used when the remote store runs on the same machine and is
// configured with a socket path.
package unix
