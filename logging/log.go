/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for the "github.com/op/go-logging" package to
// reduce the lines of code within each go file to one line: GetLog(name)
// hands back a ready-to-use, consistently-formatted logger for that package.
package logging

import (
	"log"
	"os"
	"sync"

	golog "github.com/op/go-logging"

	"github.com/hakoiri/solver/config"
)

var format = golog.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

var (
	mu      sync.Mutex
	loggers = map[string]*golog.Logger{}
)

func backend(level int) golog.Backend {
	raw := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(raw, format)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.Level(level), "")
	return leveled
}

// GetLog returns the named logger, creating and wiring it up on first use at
// config.LogLevel. Repeated calls with the same name return the same
// *golog.Logger.
func GetLog(name string) *golog.Logger {
	return get(name, config.LogLevel)
}

// GetTestLog returns a logger preset to config.TestLogLevel, for use from
// package-level tests that want quieter (or louder) output than production
// code gets.
func GetTestLog(name string) *golog.Logger {
	return get("test."+name, config.TestLogLevel)
}

func get(key string, level int) *golog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[key]; ok {
		return l
	}
	l := golog.MustGetLogger(key)
	l.SetBackend(backend(level))
	loggers[key] = l
	return l
}
