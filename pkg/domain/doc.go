/*
Package domain defines the data model shared between the Tendril engine and
its collaborators: action records, the operation surface, the controller
contract handed to builders and handlers, lifecycle events, and the error
taxonomy.

The package has no dependency on the engine itself, so hosts can implement
observability hooks or alternative frontends against these types alone.
*/
package domain
