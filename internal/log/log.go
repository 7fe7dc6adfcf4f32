package log

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// entry is one JSON log line. Request fields are empty for process events.
type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Action string         `json:"action"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func newEntry(level, action string, err error, fields map[string]any) entry {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if err != nil {
		e.Err = err.Error()
	}
	return e
}

// withRequest copies the request line and the response status as it stands
// when the entry is written.
func (e entry) withRequest(c *fiber.Ctx) entry {
	e.IP = c.IP()
	e.Method = c.Method()
	e.Path = c.Path()
	e.Status = c.Response().StatusCode()
	if rid, ok := c.Locals("requestid").(string); ok {
		e.ReqID = rid
	}
	return e
}

func (e entry) emit() {
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

// Request events.

// Audit records a successful mutation.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	newEntry("audit", action, nil, fields).withRequest(c).emit()
}

// Security records a rejected request: bad credential, invalid payload, rate limit.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	newEntry("warn", action, nil, fields).withRequest(c).emit()
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	newEntry("error", action, err, fields).withRequest(c).emit()
}

// Process events: server lifecycle and the record store.

func Info(action string, fields map[string]any) {
	newEntry("info", action, nil, fields).emit()
}

func Warn(action string, err error, fields map[string]any) {
	newEntry("warn", action, err, fields).emit()
}
