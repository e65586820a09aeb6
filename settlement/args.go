package settlement

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Config carries the host worker's gRPC endpoint, handed to the worker
// process on its command line.
type Config struct {
	Host             string
	Port             int
	MaxMessageLength int
}

// Addr returns the endpoint in host:port form suitable for grpc.Dial.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

const (
	argHost             = "host"
	argPort             = "port"
	argMaxMessageLength = "functions-grpc-max-message-length"
)

// ParseArgs extracts the endpoint configuration from worker command-line
// arguments of the form --key=value or --key value. Unknown flags are
// ignored, all three endpoint flags are required.
func ParseArgs(args []string) (*Config, error) {
	vals := map[string]string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		arg = strings.TrimPrefix(arg, "--")
		var key, val string
		if j := strings.IndexByte(arg, '='); j >= 0 {
			key, val = arg[:j], arg[j+1:]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			key, val = arg, args[i+1]
			i++
		} else {
			continue
		}
		switch key {
		case argHost, argPort, argMaxMessageLength:
			vals[key] = val
		}
	}

	var missing []string
	for _, key := range []string{argHost, argPort, argMaxMessageLength} {
		if vals[key] == "" {
			missing = append(missing, "'"+key+"'")
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required arguments: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(vals[argPort])
	if err != nil {
		return nil, fmt.Errorf("invalid %s argument: %v", argPort, err)
	}
	maxLen, err := strconv.Atoi(vals[argMaxMessageLength])
	if err != nil {
		return nil, fmt.Errorf("invalid %s argument: %v", argMaxMessageLength, err)
	}
	return &Config{
		Host:             vals[argHost],
		Port:             port,
		MaxMessageLength: maxLen,
	}, nil
}
