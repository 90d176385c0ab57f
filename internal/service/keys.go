package service

import (
	"strconv"

	"github.com/Unikyri/forohub-tui/internal/cache"
)

// Cache kinds. Invalidation is per kind: a topic mutation marks all four
// topic collection kinds stale because any of them may contain the topic.
const (
	kindTopicsList   = "topics:list"
	kindTopicsSearch = "topics:search"
	kindTopicsCourse = "topics:course"
	kindTopicsMine   = "topics:mine"
	kindTopicDetail  = "topic"
	kindRepliesTopic = "replies:topic"
	kindRepliesMine  = "replies:mine"
	kindCourses      = "courses"
	kindStats        = "stats"
)

var topicCollectionKinds = []string{
	kindTopicsList, kindTopicsSearch, kindTopicsCourse, kindTopicsMine,
}

func topicsListKey(page, size int) cache.Key {
	return cache.NewKey(kindTopicsList, pageParams(page, size))
}

func topicsSearchKey(term string, page, size int) cache.Key {
	params := pageParams(page, size)
	params["q"] = term
	return cache.NewKey(kindTopicsSearch, params)
}

func topicsCourseKey(cursoID int64, page, size int) cache.Key {
	params := pageParams(page, size)
	params["curso"] = strconv.FormatInt(cursoID, 10)
	return cache.NewKey(kindTopicsCourse, params)
}

func topicsMineKey(page, size int) cache.Key {
	return cache.NewKey(kindTopicsMine, pageParams(page, size))
}

func topicDetailKey(id int64) cache.Key {
	return cache.NewKey(kindTopicDetail, map[string]string{"id": strconv.FormatInt(id, 10)})
}

func repliesTopicKey(topicoID int64, page, size int) cache.Key {
	params := pageParams(page, size)
	params["topico"] = strconv.FormatInt(topicoID, 10)
	return cache.NewKey(kindRepliesTopic, params)
}

func repliesMineKey(page, size int) cache.Key {
	return cache.NewKey(kindRepliesMine, pageParams(page, size))
}

func coursesKey() cache.Key {
	return cache.NewKey(kindCourses, nil)
}

func coursesPageKey(page, size int) cache.Key {
	params := pageParams(page, size)
	params["view"] = "paginado"
	return cache.NewKey(kindCourses, params)
}

func coursesCategoryKey(categoria string) cache.Key {
	return cache.NewKey(kindCourses, map[string]string{"categoria": categoria})
}

func coursesSearchKey(term string) cache.Key {
	return cache.NewKey(kindCourses, map[string]string{"q": term})
}

func courseCategoriesKey() cache.Key {
	return cache.NewKey(kindCourses, map[string]string{"view": "categorias"})
}

func statsKey() cache.Key {
	return cache.NewKey(kindStats, nil)
}

func pageParams(page, size int) map[string]string {
	return map[string]string{
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	}
}
