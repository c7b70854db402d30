package util

import (
	"github.com/ValentinKolb/redis-udf/rpc/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables (e.g. RUDF_HOST)
	EnvPrefix = "rudf"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupServerFlags adds the remote store connection flags to a command
func SetupServerFlags(cmd *cobra.Command) {
	defaults := common.DefaultServerConfig()

	key := "conn-type"
	cmd.PersistentFlags().String(key, string(defaults.Type), WrapString("How to reach the remote store (tcp, unix)"))

	key = "host"
	cmd.PersistentFlags().String(key, defaults.Host, WrapString("Host of the remote store (tcp only)"))

	key = "port"
	cmd.PersistentFlags().Int(key, defaults.Port, WrapString("Port of the remote store (tcp only)"))

	key = "socket"
	cmd.PersistentFlags().String(key, defaults.SocketPath, WrapString("Path of the unix socket of the remote store (unix only)"))

	key = "password"
	cmd.PersistentFlags().String(key, "", WrapString("Password for the remote store. Authentication is enabled if a password is set"))

	key = "debug"
	cmd.PersistentFlags().Bool(key, defaults.Debug, WrapString("Append every executed command to the log file"))

	key = "log-file"
	cmd.PersistentFlags().String(key, defaults.LogFile, WrapString("The file executed commands are appended to if debug is enabled"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, defaults.TimeoutSecond, WrapString("Timeout in seconds for dial, read and write (0 blocks until the transport returns)"))

	key = "tcp-nodelay"
	cmd.PersistentFlags().Bool(key, defaults.TCPNoDelay, WrapString("Whether to enable TCP_NODELAY (tcp only)"))

	key = "tcp-keepalive"
	cmd.PersistentFlags().Int(key, defaults.TCPKeepAliveSec, WrapString("The keepalive interval in seconds (tcp only, 0 disables keepalive)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetServerConfig reads the remote store configuration from viper
func GetServerConfig() (*common.ServerConfig, error) {
	connType, err := common.ParseConnType(viper.GetString("conn-type"))
	if err != nil {
		return nil, err
	}

	password := viper.GetString("password")

	conf := &common.ServerConfig{
		Type:            connType,
		Host:            viper.GetString("host"),
		Port:            viper.GetInt("port"),
		SocketPath:      viper.GetString("socket"),
		Password:        password,
		Auth:            password != "",
		Debug:           viper.GetBool("debug"),
		LogFile:         viper.GetString("log-file"),
		TimeoutSecond:   viper.GetInt("timeout"),
		TCPNoDelay:      viper.GetBool("tcp-nodelay"),
		TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
	}

	return conf, nil
}

// GetLogLevel returns the configured log level
func GetLogLevel() string {
	return viper.GetString("log-level")
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
