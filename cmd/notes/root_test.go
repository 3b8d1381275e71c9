package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"generate", "ask"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestAskRequiresQuestion(t *testing.T) {
	rootCmd.SetArgs([]string{"ask", "lecture.pdf"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.ErrorContains(t, err, `required flag(s) "question" not set`)
}

func TestGenerateNeedsExactlyOneFile(t *testing.T) {
	rootCmd.SetArgs([]string{"generate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
}
