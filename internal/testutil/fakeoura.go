// Package testutil provides an in-process Oura API for tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// SleepQuery is one request observed by FakeOura.
type SleepQuery struct {
	StartDate string
	EndDate   string
}

// FakeOura serves /v2/usercollection/sleep with a canned body.
type FakeOura struct {
	Server *httptest.Server
	Token  string

	mu      sync.Mutex
	status  int
	body    string
	queries []SleepQuery
}

func NewFakeOura(token string) *FakeOura {
	gin.SetMode(gin.TestMode)
	f := &FakeOura{Token: token, status: http.StatusOK, body: `{"data":[],"next_token":null}`}

	r := gin.New()
	r.Use(f.bearerAuth())
	r.GET("/v2/usercollection/sleep", f.getSleep)
	f.Server = httptest.NewServer(r)
	return f
}

func (f *FakeOura) URL() string { return f.Server.URL }

func (f *FakeOura) Close() { f.Server.Close() }

// Respond sets the status and raw JSON body returned for subsequent requests.
func (f *FakeOura) Respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.body = body
}

func (f *FakeOura) Queries() []SleepQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SleepQuery(nil), f.queries...)
}

func (f *FakeOura) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == f.Token {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
	}
}

func (f *FakeOura) getSleep(c *gin.Context) {
	f.mu.Lock()
	f.queries = append(f.queries, SleepQuery{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	c.Data(status, "application/json", []byte(body))
}
