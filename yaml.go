package orderedmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML 按插入顺序序列化为 YAML 映射
// 必须在 yaml.Node 层构造,普通 map 会丢失成员顺序
func (m *OrderedMap[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, len(m.entries)*2),
	}
	for _, e := range m.entries {
		var kn, vn yaml.Node
		if err := kn.Encode(e.Key); err != nil {
			return nil, fmt.Errorf("marshal key %v: %w", e.Key, err)
		}
		if err := vn.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("marshal value of key %v: %w", e.Key, err)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// UnmarshalYAML 按源文本中的成员顺序反序列化 YAML 映射
// 重复键保留首次出现的位置,取最后一个值;任何解码失败都不修改接收者
func (m *OrderedMap[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("yaml: cannot unmarshal %s into OrderedMap", value.Tag)
	}

	out := WithCapacity[K, V](len(value.Content) / 2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key K
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("decode key: %w", err)
		}
		var val V
		if err := value.Content[i+1].Decode(&val); err != nil {
			return fmt.Errorf("decode value of key %v: %w", key, err)
		}
		out.Set(key, val)
	}

	m.entries = out.entries
	return nil
}
