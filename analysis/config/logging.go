// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"io"
	"log"
	"os"
)

// LogLevel is the verbosity of a LogGroup
type LogLevel int

const (
	// ErrLevel=1 - the minimum level of logging.
	ErrLevel LogLevel = iota + 1

	// WarnLevel=2 - the level for logging warnings, and errors
	WarnLevel

	// InfoLevel=3 - the level for logging high-level information, results
	InfoLevel

	// DebugLevel=4 - the level for debugging information, e.g. the expressions the lowering skips
	DebugLevel

	// TraceLevel=5 - the level for tracing every node built. Only useful on small programs.
	TraceLevel
)

// LogGroup is a set of loggers, one per level, that print only when the level of the group allows it.
type LogGroup struct {
	level       LogLevel
	silenceWarn bool
	loggers     map[LogLevel]*log.Logger
}

var levelPrefixes = map[LogLevel]string{
	TraceLevel: "[TRACE] ",
	DebugLevel: "[DEBUG] ",
	InfoLevel:  "[INFO] ",
	WarnLevel:  "[WARN] ",
	ErrLevel:   "[ERROR] ",
}

// NewLogGroup returns a log group that is configured to the logging settings stored inside the config. The loggers
// write to stderr.
func NewLogGroup(config *Config) *LogGroup {
	l := &LogGroup{
		level:       LogLevel(config.LogLevel),
		silenceWarn: config.SilenceWarn,
		loggers:     make(map[LogLevel]*log.Logger, len(levelPrefixes)),
	}
	for lvl, prefix := range levelPrefixes {
		l.loggers[lvl] = log.New(os.Stderr, prefix, log.LstdFlags)
	}
	return l
}

// SetAllOutput sets all the output writers to the writer provided
func (l *LogGroup) SetAllOutput(w io.Writer) {
	for _, logger := range l.loggers {
		logger.SetOutput(w)
	}
}

// SetAllFlags sets the flag of all loggers in the log group to the argument provided
func (l *LogGroup) SetAllFlags(x int) {
	for _, logger := range l.loggers {
		logger.SetFlags(x)
	}
}

// Level returns the level of the group
func (l *LogGroup) Level() LogLevel {
	return l.level
}

func (l *LogGroup) printf(level LogLevel, format string, v ...any) {
	if level == WarnLevel && l.silenceWarn {
		return
	}
	if l.level >= level {
		l.loggers[level].Printf(format, v...)
	}
}

// Tracef prints to the trace logger. Arguments are handled in the manner of Printf
func (l *LogGroup) Tracef(format string, v ...any) { l.printf(TraceLevel, format, v...) }

// Debugf prints to the debug logger. Arguments are handled in the manner of Printf
func (l *LogGroup) Debugf(format string, v ...any) { l.printf(DebugLevel, format, v...) }

// Infof prints to the info logger. Arguments are handled in the manner of Printf
func (l *LogGroup) Infof(format string, v ...any) { l.printf(InfoLevel, format, v...) }

// Warnf prints to the warning logger. Arguments are handled in the manner of Printf
func (l *LogGroup) Warnf(format string, v ...any) { l.printf(WarnLevel, format, v...) }

// Errorf prints to the error logger. Arguments are handled in the manner of Printf
func (l *LogGroup) Errorf(format string, v ...any) { l.printf(ErrLevel, format, v...) }

// GetDebug returns the debug level logger, for applications that need a logger as input
func (l *LogGroup) GetDebug() *log.Logger {
	return l.loggers[DebugLevel]
}
