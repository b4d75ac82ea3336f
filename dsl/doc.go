// Package dsl is the runtime binding layer for formstate.
//
// Overview
//   - Builder API: declare a form's shape with Object()/Field()/Subform()/Optional()/List() then MustBuild().
//   - Typed build: bind the same shape to a struct T with Bind[T]/MustBind[T]; struct keys resolve via
//     formstate:"name=..." then json tags then field names.
//   - Of[T]: adapt any Converter[T] to an AnyConverter so fields of different value types share one builder.
//
// Entry points
//   - Object(): create an object builder; chain Field/Subform/Optional/List then MustBuild()/Build.
//   - Bind[T](b): bind a builder to struct type T, producing *formstate.Group[T].
//   - Of[T](c): adapter from Converter[T] to AnyConverter (to pass into Field).
//
// Example (quickstart)
//
//	type Credentials struct {
//	    Username string `json:"username"`
//	    Password string `json:"password"`
//	}
//
//	form := dsl.MustBind[Credentials](dsl.Object().
//	    Field("username", dsl.Of(convert.String())).
//	    Field("password", dsl.Of(convert.String())))
//
//	_ = form.SetInput(formstate.NewPath("username"), "alice")
//	creds, err := form.Submit()
//
// Example (nested shapes)
//
//	address := dsl.Object().
//	    Field("street", dsl.Of(convert.String())).
//	    Field("city", dsl.Of(convert.String()))
//	user := dsl.Object().
//	    Field("username", dsl.Of(convert.String())).
//	    Optional("billing", address).
//	    List("addresses", address)
//
// Untyped Build() produces a *formstate.Group[map[string]any]: submit
// assembles a map keyed by field name, nested subforms as nested maps, lists
// as []any. Bind[T] layers a reflection shim over the same shape.
package dsl
