// Package di provides a small, generic singleton container for Go.
//
// A Container holds named bean definitions. Each definition is a typed
// constructor plus an ordered list of injectors. Beans are created once,
// either lazily on first resolve or eagerly by Refresh, and released in
// reverse creation order by Close.
//
// The container supports the two classic injection styles:
//
//   - constructor injection: the constructor passed to Provide resolves its
//     collaborators from the container (Get / Lookup) and receives them as
//     arguments of a plain Go constructor.
//
//   - setter injection: the constructor returns an empty value and Inject
//     builds an Injector that resolves a collaborator and calls a setter on
//     the target after construction.
//
// There is no struct-tag or reflection-driven injection; reflect is used only
// to compare and report types. Wiring stays explicit in your composition root.
//
// A Container is not safe for concurrent use.
//
// Quick guidance
//
// Use constructor injection when:
//   - the dependency is mandatory and the bean is useless without it
//   - you want immutable fields set once
//
// Use setter injection when:
//   - the dependency is optional or can be swapped later
//   - the bean has a natural zero value
//
// Example
//
//	c := di.New()
//	_ = di.Provide(c, "db", func(*di.Container) (*DB, error) { return OpenDB() })
//	_ = di.Provide(c, "repo", func(c *di.Container) (*Repo, error) {
//		db, err := di.Get[DB](c, "db")
//		if err != nil {
//			return nil, err
//		}
//		return NewRepo(db), nil
//	})
//	if err := c.Refresh(); err != nil {
//		return err
//	}
//	defer c.Close()
//	repo := di.MustLookup[Repo](c)
//
// Import
//
//	"github.com/sghaida/texteditor/di"
package di
