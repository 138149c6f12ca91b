// Package docs loads external documentation sources and indexes them by
// canonical member key.
//
// A canonical key has the form <kind>:<dotted.full.name>, where kind is one
// of M (method), T (type), F (field), P (property) or E (event), and the
// dotted name runs from the root namespace through the enclosing type to the
// member, for example:
//
//	M:Footprint.Repl.Session.Help
//
// Sources are either the standard XML documentation export
//
//	<doc>
//	  <assembly><name>Footprint.Repl</name></assembly>
//	  <members>
//	    <member name="M:Footprint.Repl.Session.Help">
//	      <summary>Shows help.</summary>
//	      <remarks>Longer text.</remarks>
//	      <param name="func">Command to describe.</param>
//	    </member>
//	  </members>
//	</doc>
//
// or an equivalent YAML document with a members list.
package docs
