package llm

import "github.com/google/generative-ai-go/genai"

// SchemaType is the JSON type of a schema node.
type SchemaType string

// Schema types understood by every provider.
const (
	TypeString SchemaType = "string"
	TypeObject SchemaType = "object"
)

// Schema describes the shape of a structured response.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Required    []string
}

func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case TypeObject:
		out.Type = genai.TypeObject
	default:
		out.Type = genai.TypeString
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenai()
		}
	}
	return out
}
