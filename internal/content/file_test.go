package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const helloPost = `---
title: Hello world
date: "2024-01-01"
excerpt: First post
author: Artem
tags:
  - go
  - blog
ogImage:
  url: /assets/blog/hello/cover.jpg
---
Hello there, this is the body.
`

func TestFileSource_LoadProjectsOnlyRequestedFields(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.mdx", helloPost)

	post, err := NewFileSource(dir).Load("hello", model.NewFields(model.FieldSlug, model.FieldTitle))
	require.NoError(t, err)

	assert.Equal(t, []string{"slug", "title"}, post.Keys())
	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, "Hello world", post.Title)
	assert.Empty(t, post.Excerpt)
	assert.Empty(t, post.Content)
	assert.Empty(t, post.ReadingTime)
	assert.NotNil(t, post.Tags)
}

func TestFileSource_LoadAllFields(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.mdx", helloPost)

	post, err := NewFileSource(dir).Load("hello", model.AllFields)
	require.NoError(t, err)

	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, "2024-01-01", post.Date)
	assert.Equal(t, "First post", post.Excerpt)
	assert.Equal(t, "Artem", post.Author)
	assert.Equal(t, []string{"go", "blog"}, post.Tags)
	assert.Equal(t, "/assets/blog/hello/cover.jpg", post.OGImage)
	assert.Equal(t, "1 min read", post.ReadingTime)
	assert.Equal(t, "Hello there, this is the body.", strings.TrimSpace(post.Content))
	assert.False(t, post.Has(model.FieldCoverImage), "coverImage is absent from front-matter")
	assert.False(t, post.IsExternal())
}

func TestFileSource_MissingTagsDefaultToEmpty(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "untagged.md", "---\ntitle: No tags\ndate: 2023-05-01\n---\nbody\n")

	post, err := NewFileSource(dir).Load("untagged", model.NewFields(model.FieldTags, model.FieldDate))
	require.NoError(t, err)

	assert.True(t, post.Has(model.FieldTags))
	require.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)
	assert.Equal(t, "2023-05-01", post.Date, "unquoted YAML dates stay ISO strings")
}

func TestFileSource_MarkdownExtension(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "plain.md", "---\ntitle: Plain\n---\ntext\n")

	post, err := NewFileSource(dir).Load("plain", model.NewFields(model.FieldTitle))
	require.NoError(t, err)
	assert.Equal(t, "Plain", post.Title)
}

func TestFileSource_NoFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bare.md", "just words here\n")

	post, err := NewFileSource(dir).Load("bare", model.NewFields(model.FieldTitle, model.FieldContent))
	require.NoError(t, err)
	assert.False(t, post.Has(model.FieldTitle))
	assert.Equal(t, "just words here", strings.TrimSpace(post.Content))
}

func TestFileSource_LoadMissingSlug(t *testing.T) {
	post, err := NewFileSource(t.TempDir()).Load("nope", model.AllFields)

	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsMalformedFrontMatter(err))
}

func TestFileSource_LoadRejectsPathSlugs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "posts")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writePost(t, dir, "secret.md", "---\ntitle: Secret\n---\n")

	_, err := NewFileSource(sub).Load("../secret", model.AllFields)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestFileSource_MalformedFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "broken.md", "---\ntitle: [unclosed\n---\nbody\n")

	post, err := NewFileSource(dir).Load("broken", model.AllFields)
	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, IsMalformedFrontMatter(err))
	assert.False(t, IsNotFound(err))
}

func TestFileSource_MissingDirectory(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing")).Posts(model.AllFields)
	require.Error(t, err)
	assert.True(t, IsFileSystemError(err))
}

func TestFileSource_SlugsSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.mdx", "---\ntitle: A\n---\n")
	writePost(t, dir, "b.md", "---\ntitle: B\n---\n")
	writePost(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.md"), 0o755))

	slugs, err := NewFileSource(dir).Slugs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, slugs)
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  string
	}{
		{"empty", 0, "0 min read"},
		{"one word", 1, "1 min read"},
		{"exactly one minute", 200, "1 min read"},
		{"just over", 201, "2 min read"},
		{"long", 1000, "5 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.TrimSpace(strings.Repeat("word ", tt.words))
			assert.Equal(t, tt.want, ReadingTime(body))
		})
	}
}
