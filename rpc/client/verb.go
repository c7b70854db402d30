package client

import (
	"fmt"
	"github.com/ValentinKolb/redis-udf/lib/udf"
	"strings"
)

// Verb is one of the commands forwarded to the remote store
type Verb uint8

const (
	VerbSet Verb = iota + 1
	VerbSAdd
	VerbSRem
)

// keyValueShape is the argument shape of every verb: 'key' (string) 'value' (string)
var keyValueShape = argShape{
	required: []udf.ArgType{udf.StringArg, udf.StringArg},
	usage:    "'key' (string) 'value' (string)",
}

var verbNames = map[Verb]string{
	VerbSet:  "SET",
	VerbSAdd: "SADD",
	VerbSRem: "SREM",
}

// Verbs returns all supported verbs
func Verbs() []Verb {
	return []Verb{VerbSet, VerbSAdd, VerbSRem}
}

// ParseVerb converts a command name (case insensitive) to a Verb
func ParseVerb(s string) (Verb, error) {
	for v, name := range verbNames {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unsupported command %q (expected one of SET, SADD, SREM)", s)
}

// String returns the command name sent to the remote store
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Verb(%d)", uint8(v))
}

// Valid returns true for the supported verbs
func (v Verb) Valid() bool {
	_, ok := verbNames[v]
	return ok
}

func (v Verb) shape() argShape {
	return keyValueShape
}

// CommandLine returns the command as text, "<VERB> <key> <value>"
func CommandLine(v Verb, key, value string) string {
	return fmt.Sprintf("%s %s %s", v, key, value)
}
