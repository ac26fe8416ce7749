package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/youthlife/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	order := []string{}
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "server", F: func() error {
		order = append(order, "server")
		return errors.New("already closed")
	}})
	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 2)
}
