package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/guruwali/core"
)

func TestRollbarLogger(t *testing.T) {
	var out bytes.Buffer
	l := NewRollbarLogger(log.New(&out, "", 0), &core.Config{Env: "TEST"})
	l.Enable(false)

	tests := []struct {
		name string
		log  func(msg string, args ...interface{})
		args []interface{}
		want string
	}{
		{name: "info", log: l.Info, want: "INFO: hello\n"},
		{name: "warn with error", log: l.Warn, args: []interface{}{errors.New("boom")}, want: "WARN: hello\nboom\n"},
		{
			name: "error with extras", log: l.Error, args: []interface{}{map[string]interface{}{"key": "students"}},
			want: "ERROR: hello\nmap[key:students]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			tt.log("hello", tt.args...)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
