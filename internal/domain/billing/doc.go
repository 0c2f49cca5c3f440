// Package billing provides domain models for payment records and their evidence files.
//
// This package implements the payment tracking bounded context, which is responsible for:
//   - Payment records with payee contact details and monetary amounts
//   - Deriving payment status (due_now, overdue) from the due date
//   - Computing the total due from due amount, discount and tax
//   - Evidence files attached to completed payments
//
// Key Aggregates:
//   - Payment: A single payment obligation owed by a payee
//   - Evidence: Binary proof-of-payment document linked to a payment
//
// Status transitions are guarded: overdue is derived from the due date
// and never accepted from the client, and an existing evidence link
// must be preserved on update.
package billing
