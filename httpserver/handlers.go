package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/aura-studio/bucketlist/handler"
	"github.com/gin-gonic/gin"
)

func (e *Engine) OK(c *gin.Context) {
	c.String(http.StatusOK, "OK")
	c.Abort()
}

// Buckets builds an opaque event from the request and runs one
// enumeration. The event content is diagnostic only.
func (e *Engine) Buckets(c *gin.Context) {
	var event handler.Event
	switch c.Request.Method {
	case http.MethodPost:
		event = e.genPostEvent(c)
	default:
		event = e.genGetEvent(c)
	}

	resp, _ := e.h.Invoke(c.Request.Context(), event)

	c.JSON(resp.StatusCode, resp.Body)
	c.Abort()
}

func (e *Engine) genGetEvent(c *gin.Context) handler.Event {
	event := handler.Event{}
	for k, v := range c.Request.URL.Query() {
		event[k] = v[0]
	}
	return event
}

func (e *Engine) genPostEvent(c *gin.Context) handler.Event {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return handler.Event{}
	}
	defer c.Request.Body.Close()

	var event handler.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return handler.Event{"body": string(data)}
	}
	return event
}
