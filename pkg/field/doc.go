// Package field connects typed form values to the widgets that edit them.
//
// A WidgetManager knows how to build a labeled widget for an initial value,
// read the value back and paint an error on it. A Field adds the label, help
// text, initial value and validators, and becomes a live Bound entry when a
// form binds it.
//
// Values keep their Go type end to end: text-like fields carry a string,
// checkboxes a bool and multiselects a []string. Validators always see
// strings; see CheckString, CheckBool and CheckStrings for how each type is
// presented to them.
package field
