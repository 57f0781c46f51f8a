// Package her maps REST backed resources into runtime model definitions
// with declarative relationships. Models are registered by name on a
// controller, declare their to-many, to-one and owned-by relationships
// and resolve them lazily over an injected resource loader, caching the
// results per record.
//
// A minimal setup:
//
//	c, err := her.New(&config.Controller{BaseURL: "https://api.example.com"})
//	if err != nil {
//		// handle the error
//	}
//
//	user, _ := c.RegisterModel("User")
//	c.RegisterModel("Article")
//	user.HasMany("articles")
//
//	record, err := user.Find(ctx, 1)
//	articles, err := record.RelationMany(ctx, "articles")
//
// The first 'articles' access fetches '/users/1/articles', the repeated
// accesses reuse the fetched collection.
package her
