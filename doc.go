// Package editorpdf is the Composition Root for the PDF annotation client.
//
// It connects the annotation state machines (Domain Layer) with the REST
// and caching adapters (Infrastructure Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// The backend rendering service owns the documents; this library owns the
// conversation with it. A Session accumulates annotation instructions
// (text, image, line drawing) over a multi-page document and submits them
// as one atomic batch, while a PagePreview lets the user browse rasterized
// pages independently, with last-request-wins ordering under rapid
// navigation.
//
// Features:
//
//   - **Annotation session**: tool selection, per-tool form state, ordered
//     batch accumulation with page stamping at add time.
//   - **Schema validation**: field-path-tagged errors gate every submission.
//   - **Processing gateway**: single-pending submission lifecycle with cache
//     invalidation and user notices on completion.
//   - **Page preview**: pan/zoom controller with generation-counted raster
//     fetches; stale responses are discarded, never applied.
//   - **Pluggable edges**: the backend API, the invalidation registry and the
//     notifier are interfaces, so the core tests in isolation.
//
// Usage:
//
//	svc, err := editorpdf.New("http://localhost:8080/api",
//		editorpdf.WithLogger(logger),
//	)
//
//	session, preview, err := svc.OpenSession(ctx, docID)
//	preview.Load(ctx)
//
//	session.SelectTool(editorpdf.ToolText)
//	session.Text().Content = "Reviewed"
//	err = session.SubmitTool(ctx)
//	err = session.RequestSave(ctx)
package editorpdf
