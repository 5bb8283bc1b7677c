// Package apierror defines the JSON error body shared by the mock backend and
// its clients, and normalises failures into a message a user can read.
//
// Servers write *Error values; clients turn non-success responses into
// *ResponseError with FromResponse and hand any error to Normalize:
//
//	if err := apierror.FromResponse(resp); err != nil {
//	    n := apierror.Normalize(err, "Failed to load dashboard data")
//	    if n.Unauthorized() {
//	        session.Logout(ctx)
//	    }
//	    return n.Message
//	}
package apierror
