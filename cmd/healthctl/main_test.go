package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_Parse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
	}{
		{name: "migrate up", args: []string{"migrate", "up"}, command: "migrate up"},
		{name: "migrate down", args: []string{"migrate", "down"}, command: "migrate down"},
		{name: "migrate status", args: []string{"migrate", "status"}, command: "migrate status"},
		{
			name:    "create admin",
			args:    []string{"create-admin", "--name", "Root", "--email", "root@example.com", "--password", "Secret123!"},
			command: "create-admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			parser, err := kong.New(&cli)
			require.NoError(t, err)

			ctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.command, ctx.Command())
		})
	}
}

func TestCLI_CreateAdminRequiresFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"create-admin", "--name", "Root"})
	assert.Error(t, err)
}

func TestCLI_CreateAdminPasswordFromEnv(t *testing.T) {
	t.Setenv("HEALTHCTL_ADMIN_PASSWORD", "FromEnv123!")

	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"create-admin", "--name", "Root", "--email", "root@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "FromEnv123!", cli.CreateAdmin.Password)
}
