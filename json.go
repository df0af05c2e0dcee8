package orderedmap

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

// MarshalJSON 按插入顺序序列化为 JSON 对象,成员顺序与插入顺序完全一致
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := sonic.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %v: %w", e.Key, err)
		}
		// 非字符串键(如整数)按 JSON 对象键约定加引号
		if len(kb) > 0 && kb[0] == '"' {
			buf.Write(kb)
		} else {
			buf.WriteByte('"')
			buf.Write(kb)
			buf.WriteByte('"')
		}
		buf.WriteByte(':')
		vb, err := sonic.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value of key %v: %w", e.Key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON 按源文本中的成员顺序反序列化 JSON 对象
// 重复键保留首次出现的位置,取最后一个值;任何解码失败都不修改接收者
func (m *OrderedMap[K, V]) UnmarshalJSON(data []byte) error {
	root, err := sonic.Get(data)
	if err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if root.Type() != ast.V_OBJECT {
		return fmt.Errorf("json: cannot unmarshal non-object into OrderedMap")
	}
	n, err := root.Len()
	if err != nil {
		return fmt.Errorf("read json object: %w", err)
	}

	out := WithCapacity[K, V](n)
	var walkErr error
	if err := root.ForEach(func(path ast.Sequence, node *ast.Node) bool {
		key, decErr := decodeJSONKey[K](*path.Key)
		if decErr != nil {
			walkErr = decErr
			return false
		}
		raw, rawErr := node.MarshalJSON()
		if rawErr != nil {
			walkErr = fmt.Errorf("read value of key %q: %w", *path.Key, rawErr)
			return false
		}
		var value V
		if decErr := sonic.Unmarshal(raw, &value); decErr != nil {
			walkErr = fmt.Errorf("decode value of key %q: %w", *path.Key, decErr)
			return false
		}
		out.Set(key, value)
		return true
	}); err != nil {
		return fmt.Errorf("scan json object: %w", err)
	}
	if walkErr != nil {
		return walkErr
	}

	m.entries = out.entries
	return nil
}

// decodeJSONKey 将 JSON 对象的成员名解码为键类型
// 先按字符串形式解码,失败后再按原文解码以支持整数等非字符串键
func decodeJSONKey[K comparable](name string) (K, error) {
	var key K
	if err := sonic.UnmarshalString(strconv.Quote(name), &key); err == nil {
		return key, nil
	}
	if err := sonic.UnmarshalString(name, &key); err != nil {
		var zero K
		return zero, fmt.Errorf("decode key %q: %w", name, err)
	}
	return key, nil
}
