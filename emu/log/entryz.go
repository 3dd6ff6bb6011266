package log

import (
	"fmt"
	"sync"

	"gopkg.in/Sirupsen/logrus.v0"
)

const maxZFields = 16

// EntryZ is a log entry built field by field. It is pooled and must be
// terminated with End, which emits it and gives it back to the pool.
type EntryZ struct {
	mod     Module
	lvl     Level
	msg     string
	fields  [maxZFields]zfield
	nfields int
}

var entryPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func NewEntryZ() *EntryZ {
	e := entryPool.Get().(*EntryZ)
	e.nfields = 0
	return e
}

func (e *EntryZ) add(f zfield) *EntryZ {
	if e != nil && e.nfields < maxZFields {
		e.fields[e.nfields] = f
		e.nfields++
	}
	return e
}

func (e *EntryZ) String(key string, s string) *EntryZ {
	return e.add(zfield{key: key, kind: kindString, str: s})
}

func (e *EntryZ) Bool(key string, b bool) *EntryZ {
	var v uint64
	if b {
		v = 1
	}
	return e.add(zfield{key: key, kind: kindBool, num: v})
}

func (e *EntryZ) Stringer(key string, s fmt.Stringer) *EntryZ {
	return e.add(zfield{key: key, kind: kindStringer, obj: s})
}

func (e *EntryZ) Hex8(key string, v uint8) *EntryZ {
	return e.add(zfield{key: key, kind: kindHex8, num: uint64(v)})
}

func (e *EntryZ) Hex16(key string, v uint16) *EntryZ {
	return e.add(zfield{key: key, kind: kindHex16, num: uint64(v)})
}

// Addr adds a 24-bit bus address.
func (e *EntryZ) Addr(key string, addr uint32) *EntryZ {
	return e.add(zfield{key: key, kind: kindAddr, num: uint64(addr & 0xffffff)})
}

func (e *EntryZ) Int(key string, v int) *EntryZ {
	return e.add(zfield{key: key, kind: kindInt, num: uint64(v)})
}

func (e *EntryZ) Uint64(key string, v uint64) *EntryZ {
	return e.add(zfield{key: key, kind: kindUint, num: v})
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	return e.add(zfield{key: key, kind: kindError, obj: err})
}

// End emits the entry.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	fields := make(logrus.Fields, e.nfields+1)
	fields["_mod"] = e.mod.String()
	for i := range e.fields[:e.nfields] {
		fields[e.fields[i].key] = e.fields[i].format()
	}
	entry := logrus.StandardLogger().WithFields(fields)

	switch e.lvl {
	case DebugLevel:
		entry.Debug(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	default:
		entry.Panic(e.msg)
	}

	*e = EntryZ{}
	entryPool.Put(e)
}
