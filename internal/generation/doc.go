// Package generation holds the vocabulary shared by every stage of the
// structured generation gateway: the request envelope sent to the remote
// model, the inline image attachments it may carry, the Invoker and
// Connector interfaces that hide the Gemini client from the core, and the
// closed error taxonomy (Configuration, Input, Transport, Validation) that
// is the only kind of failure a caller ever observes.
package generation
