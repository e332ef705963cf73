// Package method plans how a form submits verbs that browsers cannot send
// natively, and provides the server-side middleware that reads the override
// back. Both halves share FieldName so they cannot drift apart.
package method
