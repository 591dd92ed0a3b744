package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd(t *testing.T) {
	t.Run("Command Metadata", func(t *testing.T) {
		assert.Equal(t, "tempcredsctl", RootCmd.Use, "Command use should be 'tempcredsctl'")
		assert.Equal(t, "AWS Temporary Credentials Tool", RootCmd.Short, "Short description should match")
		assert.Equal(t, `A CLI tool for installing and running an AWS credential_process helper.`, RootCmd.Long, "Long description should match")
	})

	t.Run("Command Structure", func(t *testing.T) {
		commands := RootCmd.Commands()
		assert.Len(t, commands, 2, "Should have exactly 2 subcommands")

		commandNames := make([]string, len(commands))
		for i, c := range commands {
			commandNames[i] = c.Use
		}
		assert.Contains(t, commandNames, "setup", "Should have 'setup' subcommand")
		assert.Contains(t, commandNames, "fetch", "Should have 'fetch' subcommand")
	})
}
