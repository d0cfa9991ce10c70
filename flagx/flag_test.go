package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "postgres://localhost/auth", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "postgres://localhost/auth"},
		},
		{
			name:    "equals form",
			args:    []string{"--dsn=postgres://localhost/auth", "-o", "5"},
			allowed: []string{"--dsn"},
			want:    []string{"--dsn=postgres://localhost/auth"},
		},
		{
			name:    "flag without value",
			args:    []string{"-m", "-d", "dsn"},
			allowed: []string{"-m"},
			want:    []string{"-m"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b", "2"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"test", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"test", "--config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"test", "--config", "third.json"}
	assert.Equal(t, "third.json", JsonConfigFlags())

	os.Args = []string{"test", "-config", "fourth.json"}
	assert.Equal(t, "fourth.json", JsonConfigFlags())

	os.Args = []string{"test", "-d", "dsn"}
	assert.Equal(t, "", JsonConfigFlags())
}
