// Package notion is a typed client for the Notion REST API.
//
// The package has three layers. Typed models mirror the API's polymorphic
// JSON shapes as closed variant sets with a type discriminator: blocks,
// rich text runs, property schemas and values, parents, and filters.
// Builders compose those models without touching JSON: NewBlocks for
// content trees, NewRichText for styled runs, NewSchema and NewProperties
// for data source columns and page values, and the filter constructors
// (Title, Number, DateProp, ...) with And/Or combinators. The Client wraps
// every operation with pre-flight validation, proactive rate limiting from
// response headers, and bounded 429 retries with jittered backoff.
//
//	client := notion.NewClient(token)
//	blocks := notion.NewBlocks().
//		Heading1("Weekly notes").
//		Bulleted("First item", func(b *notion.BlockBuilder) {
//			b.Paragraph("nested detail")
//		}).
//		Build()
//	_, err := client.AppendBlockChildren(ctx, pageID,
//		&notion.AppendBlockChildrenRequest{Children: blocks})
//
// All list-style calls return one cursor page; CollectAll and Iterate walk
// a cursor chain to exhaustion.
package notion
