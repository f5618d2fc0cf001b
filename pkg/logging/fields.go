package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Field helpers for names that recur across the pipeline
func Stage(name string) Field {
	return String("stage", name)
}

func Path(p string) Field {
	return String("path", p)
}

func Rows(n int) Field {
	return Int("rows", n)
}

func Accession(a string) Field {
	return String("accession", a)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
