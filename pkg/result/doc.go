// Package result provides the outcome model used by every sqlkit operation.
//
// A Result holds either a success value or a typed *Error, never both.
// Operations at the library boundary return Result instead of a bare error so
// callers can branch on the failure kind (not found, already exists, bad
// request, conflict, unknown) without string matching or driver knowledge.
//
// Optional models "row absent is a valid outcome" without resorting to nil
// sentinels.
//
// Basic usage:
//
//	res := query.Get(ctx, ex, sqlText, args, scanUser, userID)
//	if res.IsErr() {
//	    switch res.Err().Kind() {
//	    case result.KindNotFound:
//	        // 404
//	    case result.KindAlreadyExists:
//	        // 409
//	    }
//	}
//	user := res.Value()
package result
