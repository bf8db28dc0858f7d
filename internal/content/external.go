package content

// ExternalPosts are articles published on the Featurist blog archive.
// Edit this list to add or remove them.
var ExternalPosts = []ExternalPost{
	{
		Title:       "Node + SWC make a lightning fast typescript runtime",
		Excerpt:     "Typescript is great, but the compilation is slow. This post shows how to make it fast.",
		Date:        "2022-04-29",
		ReadingTime: "6 min read",
		URL:         "https://archive.featurist.co.uk/blog/running-typescript-in-node-with-near-zero-compilation-cost/",
		Tags:        []string{"node", "typescript"},
	},
	{
		Title:       "Hosting Rails apps for free on Oracle Cloud with Dokku",
		Excerpt:     "Dokku has always been a low effort way to have your own Heroku. And now on a free infrastructure.",
		Date:        "2022-04-29",
		ReadingTime: "9 min read",
		URL:         "https://archive.featurist.co.uk/blog/hosting-rails-apps-for-free-on-oracle-cloud-with-dokku/",
		Tags:        []string{"rails", "dokku", "devops"},
	},
	{
		Title:       "Turbo and fast system tests",
		Excerpt:     "Build rich UIs with Rails and Turbo and test them without real browser.",
		Date:        "2020-01-10",
		ReadingTime: "10 min read",
		URL:         "https://archive.featurist.co.uk/blog/turbo-and-fast-system-tests/",
		Tags:        []string{"rails", "testing"},
	},
	{
		Title:       "File Links in the Terminal",
		Excerpt:     "Open file links in the terminal",
		Date:        "2020-01-10",
		ReadingTime: "7 min read",
		URL:         "https://archive.featurist.co.uk/blog/file-links-in-terminal/",
		Tags:        []string{"tmux", "vim"},
	},
	{
		Title:       "Mithril vs Hyperdom",
		Excerpt:     "Frontend frameworks comparison",
		Date:        "2019-07-12",
		ReadingTime: "7 min read",
		URL:         "https://archive.featurist.co.uk/blog/mithril-vs-hyperdom/",
		Tags:        []string{"node", "javascript"},
	},
	{
		Title:       "Building a documentation website",
		Excerpt:     "Quickly put together a beautiful documentation website with runnable code examples",
		Date:        "2019-06-07",
		ReadingTime: "5 min read",
		URL:         "https://archive.featurist.co.uk/blog/building-documentation-website/",
		Tags:        []string{"node", "javascript", "codesandbox"},
	},
	{
		Title:       "Keeping node dependencies up to date",
		Excerpt:     "Making node dependencies upgrade less of a PITA",
		Date:        "2019-06-04",
		ReadingTime: "2 min read",
		URL:         "https://archive.featurist.co.uk/blog/keeping-dependencies-up-to-date/",
		Tags:        []string{"node", "npm", "javascript"},
	},
}
