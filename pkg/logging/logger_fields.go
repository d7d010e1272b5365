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

func Int64(key string, value int64) Field {
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

// Domain field helpers

func Component(name string) Field {
	return String("component", name)
}

func Query(name string) Field {
	return String("query", name)
}

func Mode(mode string) Field {
	return String("mode", mode)
}

// AirportID and AirportCode key the value by the airport's role, e.g. from_id
func AirportID(role string, id int64) Field {
	return Int64(role+"_id", id)
}

func AirportCode(role, code string) Field {
	return String(role+"_code", code)
}

func Path(p string) Field {
	return String("path", p)
}

func Count(n int) Field {
	return Int("count", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func RunID(id string) Field {
	return String("run_id", id)
}
