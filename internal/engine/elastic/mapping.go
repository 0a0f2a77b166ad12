package elastic

// DefaultIndexName is the default Elasticsearch index used for catalog
// item documents.
const DefaultIndexName = "catalog_items"

// buildIndexMapping returns the JSON mapping for the catalog index. Field
// types mirror the search document exactly: artNum and the flattened
// category reference are keywords so they match as whole tokens, the rest
// are analyzed text or numerics.
func buildIndexMapping() string {
	return `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "id":          { "type": "integer" },
      "title":       { "type": "text" },
      "price":       { "type": "float" },
      "quantity":    { "type": "integer" },
      "description": { "type": "text" },
      "image":       { "type": "text" },
      "artNum":      { "type": "keyword" },
      "features":    { "type": "text" },
      "category":    { "type": "keyword" }
    }
  }
}`
}
