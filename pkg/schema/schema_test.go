package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vamsahq/vamsa/pkg/schema"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 3)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "people", schema.Person{}.TableName())
	assert.Equal(t, "relationships", schema.Relationship{}.TableName())
	assert.Equal(t, "import_logs", schema.ImportLog{}.TableName())
}
