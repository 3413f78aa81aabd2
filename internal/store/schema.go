package store

const Schema = `
CREATE TABLE IF NOT EXISTS songs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	album TEXT NOT NULL,
	duration INTEGER NOT NULL DEFAULT 0,
	file_path TEXT NOT NULL,
	album_cover TEXT NOT NULL DEFAULT '',
	release_date TEXT NOT NULL DEFAULT '',
	album_description TEXT NOT NULL DEFAULT '',
	lyrics TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_songs_created_at ON songs(created_at);

CREATE TABLE IF NOT EXISTS playlists (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	cover_image TEXT NOT NULL DEFAULT '',
	song_ids TEXT NOT NULL DEFAULT '[]',  -- JSON array of song ids
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS albums (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	artist TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	cover_image TEXT NOT NULL DEFAULT '',
	release_date TEXT NOT NULL DEFAULT '',
	song_ids TEXT NOT NULL DEFAULT '[]',  -- JSON array of song ids
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	favorite_song_ids TEXT NOT NULL DEFAULT '[]',  -- JSON array of song ids
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`
