package logging

import "os"

// ResolveSeverity resolves the effective severity floor from layered
// overrides. Precedence, highest first:
//
//	environment value > command-line value > file-declared value > INFO
//
// Environment deliberately outranks the command line: batch and automation
// contexts drive verbosity through the environment and must not be silently
// overridden by a transient flag. An empty or unparseable value at any rung
// yields to the next one.
func ResolveSeverity(envValue, cliValue, fileValue string) Severity {
	for _, v := range []string{envValue, cliValue, fileValue} {
		if v == "" {
			continue
		}
		if sev, err := ParseSeverity(v); err == nil {
			return sev
		}
	}
	return DefaultSeverity
}

// ResolveSeverityEnv is ResolveSeverity with the environment rung read from
// the named variable.
func ResolveSeverityEnv(envKey, cliValue, fileValue string) Severity {
	return ResolveSeverity(os.Getenv(envKey), cliValue, fileValue)
}
