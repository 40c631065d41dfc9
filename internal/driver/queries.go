package driver

// Collection names map to node labels. Labels cannot be parameterized in
// Cypher, so these templates take the label via fmt.Sprintf; only the fixed
// collection constants below are ever interpolated.
const (
	TranslationCollection = "Translation"
	SessionNoteCollection = "SessionNote"

	AddDocumentQueryTmpl = `
		MERGE (n:%s {id: $id})
		SET n.text = $text,
			n.embedding = $embedding,
			n += $props
		RETURN n.id AS id
	`

	// Memgraph MAGE vector search; one equality filter pushed into the
	// query via dynamic property access. filter_key = "" disables it.
	VectorSearchQueryTmpl = `
		CALL vector_search.search($index, $limit, $embedding)
		YIELD node, distance
		WITH node, distance
		WHERE $filter_key = "" OR node[$filter_key] = $filter_value
		RETURN node.id AS id, node.text AS text, distance, properties(node) AS props
		ORDER BY distance ASC
	`

	FindWhereQueryTmpl = `
		MATCH (n:%s)
		WHERE n[$key] = $value
		RETURN n.id AS id, n.text AS text, 0.0 AS distance, properties(n) AS props
		ORDER BY n.timestamp DESC
		LIMIT $limit
	`

	DeleteWhereQueryTmpl = `
		MATCH (n:%s)
		WHERE n[$key] = $value
		DETACH DELETE n
		RETURN count(*) AS deleted
	`

	CountQueryTmpl = `
		MATCH (n:%s)
		RETURN count(n) AS total
	`
)
