package accountid_test

import (
	"encoding/json"
	"testing"

	swaggest "github.com/swaggest/jsonschema-go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/near/go-account-id/pkg/accountid"
)

func TestJSONSchemaInvopop(t *testing.T) {
	schema := accountid.AccountID{}.JSONSchema()
	require.NotNil(t, schema)

	assert.Equal(t, "string", schema.Type)
	require.NotNil(t, schema.MinLength)
	require.NotNil(t, schema.MaxLength)
	assert.Equal(t, uint64(accountid.MinLen), *schema.MinLength)
	assert.Equal(t, uint64(accountid.MaxLen), *schema.MaxLength)

	// The schema document stays a plain bounded string node.
	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"minLength":2`)
	assert.Contains(t, string(data), `"maxLength":64`)
}

func TestJSONSchemaSwaggest(t *testing.T) {
	var schema swaggest.Schema
	err := accountid.AccountID{}.PrepareJSONSchema(&schema)
	require.NoError(t, err)

	require.NotNil(t, schema.Type)
	require.NotNil(t, schema.MaxLength)
	assert.Equal(t, int64(accountid.MinLen), schema.MinLength)
	assert.Equal(t, int64(accountid.MaxLen), *schema.MaxLength)
}
