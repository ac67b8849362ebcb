package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("PST", -8*3600))
	assert.Equal(t, "recommendations/2024-03-10/abc.json", ObjectName("recommendations", at, "abc"))
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "ada@example.com", userKey("  Ada@Example.COM "))
}
