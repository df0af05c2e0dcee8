package orderedmap

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	m := New[string, int]()
	m.Set("key2", 20)
	m.Set("key1", 10)

	data, err := sonic.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"key2":20,"key1":10}`, string(data))
}

func TestMarshalJSONEmpty(t *testing.T) {
	m := New[string, int]()
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	m := New[string, int]()
	err := sonic.UnmarshalString(`{"key2":20,"key1":10}`, m)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"key2", "key1"}, m.Keys())
	assert.Equal(t, []int{20, 10}, m.Values())
}

func TestJSONRoundTrip(t *testing.T) {
	m := New[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	data, err := sonic.Marshal(m)
	require.NoError(t, err)

	got := New[string, int]()
	require.NoError(t, sonic.Unmarshal(data, got))

	assert.Equal(t, m.Keys(), got.Keys())
	assert.Equal(t, m.Values(), got.Values())
	assert.Equal(t, m.Len(), got.Len())
}

func TestJSONRoundTripEmpty(t *testing.T) {
	m := New[string, int]()
	data, err := sonic.Marshal(m)
	require.NoError(t, err)

	got := New[string, int]()
	require.NoError(t, sonic.Unmarshal(data, got))
	assert.True(t, got.IsEmpty())
}

func TestUnmarshalJSONDuplicateKeys(t *testing.T) {
	// 重复键:位置取首次出现,值取最后一个
	m := New[string, int]()
	require.NoError(t, m.UnmarshalJSON([]byte(`{"a":1,"b":2,"a":3}`)))

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestUnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array", input: `[1,2]`},
		{name: "string", input: `"hello"`},
		{name: "number", input: `42`},
		{name: "malformed", input: `{"a":`},
		{name: "value type mismatch", input: `{"a":"not a number"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New[string, int]()
			m.Set("existing", 1)

			err := m.UnmarshalJSON([]byte(tt.input))
			require.Error(t, err)

			// 失败时接收者保持原状
			assert.Equal(t, 1, m.Len())
			v, ok := m.Get("existing")
			require.True(t, ok)
			assert.Equal(t, 1, v)
		})
	}
}

func TestJSONIntKeys(t *testing.T) {
	m := New[int, string]()
	m.Set(2, "b")
	m.Set(1, "a")

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"2":"b","1":"a"}`, string(data))

	got := New[int, string]()
	require.NoError(t, got.UnmarshalJSON(data))
	assert.Equal(t, []int{2, 1}, got.Keys())
	assert.Equal(t, []string{"b", "a"}, got.Values())
}

func TestJSONStructValues(t *testing.T) {
	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	m := New[string, user]()
	m.Set("u2", user{Name: "bob", Age: 30})
	m.Set("u1", user{Name: "alice", Age: 25})

	data, err := sonic.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"u2":{"name":"bob","age":30},"u1":{"name":"alice","age":25}}`, string(data))

	got := New[string, user]()
	require.NoError(t, sonic.Unmarshal(data, got))
	assert.Equal(t, []string{"u2", "u1"}, got.Keys())
	v, ok := got.Get("u1")
	require.True(t, ok)
	assert.Equal(t, user{Name: "alice", Age: 25}, v)
}
