// Package ops embeds the GraphQL operation documents captured from the
// Copilot Money web client. They are sent to the API verbatim and also serve
// as a known-good corpus for schema inference.
package ops

import "embed"

//go:embed documents/*.graphql
var Documents embed.FS

//go:embed documents/User.graphql
var User string

//go:embed documents/Transactions.graphql
var Transactions string

//go:embed documents/Transaction.graphql
var Transaction string

//go:embed documents/Categories.graphql
var Categories string

//go:embed documents/Tags.graphql
var Tags string

//go:embed documents/Recurrings.graphql
var Recurrings string

//go:embed documents/Budgets.graphql
var Budgets string

//go:embed documents/UpdateTransaction.graphql
var UpdateTransaction string

//go:embed documents/CreateCategory.graphql
var CreateCategory string

//go:embed documents/UpdateCategory.graphql
var UpdateCategory string

//go:embed documents/CreateTag.graphql
var CreateTag string

//go:embed documents/DeleteTag.graphql
var DeleteTag string

//go:embed documents/CreateRecurring.graphql
var CreateRecurring string
