// Package manifest describes a PHP source file in YAML and builds it as a
// [render.Block].
//
//	header: file
//	namespace: App\Models
//	uses:
//	  - class: App\Base\Model
//	requires:
//	  - path: vendor/autoload.php
//	    once: true
//	vars:
//	  table: users
//	classes:
//	  - name: User
//	    extends: Model
//	    implements: [JsonSerializable]
//	    constants:
//	      - name: TABLE
//	        value: {eval: table}
//	    properties:
//	      - name: casts
//	        visibility: protected
//	        default:
//	          bind: {created_at: datetime, admin: bool}
//	    methods:
//	      - name: jsonSerialize
//	        returns: array
//	        body:
//	          - return $this->toArray();
//
// # Values
//
// Defaults and constants are values. A mapping value holds exactly one of
//
//   - raw: PHP code emitted verbatim
//   - bind: any YAML value, encoded as a PHP literal. Mappings keep their
//     key order and become PHP arrays.
//   - eval: an expr-lang expression over vars, evaluated every time the
//     block renders
//   - call: a function call with a name and a list of value arguments
//
// Any other YAML value is shorthand for bind.
package manifest
