package htmlutil_test

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"brstats/lib/htmlutil"
)

func TestUnwrapComments(t *testing.T) {
	page := `<html><body>
		<div id="all_batting">
			<!-- <table id="batting"><tr><td>hidden</td></tr></table> -->
		</div>
	</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	require.Equal(t, 0, doc.Find("table#batting").Length())

	docs := htmlutil.UnwrapComments(doc.Selection)
	require.Len(t, docs, 1)
	require.Equal(t, "hidden", docs[0].Find("table#batting td").Text())
}

func TestPlayerID(t *testing.T) {
	require.Equal(t, "altuvjo01", htmlutil.PlayerID("/players/a/altuvjo01.shtml"))
	require.Equal(t, "o'neipa01", htmlutil.PlayerID("/players/o/o'neipa01.shtml"))
	require.Equal(t, "", htmlutil.PlayerID("/teams/HOU/2017.shtml"))
	require.Equal(t, "", htmlutil.PlayerID("/players/a/altuvjo01.shtml#batting"))
}

func TestPlayerIDsKeepsOrderAndDuplicates(t *testing.T) {
	page := `<table>
		<tr><td><a href="/players/a/altuvjo01.shtml">Jose Altuve</a></td></tr>
		<tr><td><a href="/teams/HOU/2017.shtml">HOU</a></td></tr>
		<tr><td><a href="/players/b/bregmal01.shtml">Alex Bregman</a></td></tr>
		<tr><td><a href="/players/a/altuvjo01.shtml">Jose Altuve</a></td></tr>
	</table>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	ids := htmlutil.PlayerIDs(doc.Selection)
	require.Equal(t, []string{"altuvjo01", "bregmal01", "altuvjo01"}, ids)
}

func TestGetAnchors(t *testing.T) {
	page := `<p>
		<a href="/teams/HOU/2017.shtml">Houston   Astros</a>
		@
		<a href="/teams/NYY/2017.shtml"> New York Yankees </a>
		<em><a href="/boxes/NYA/NYA201705110.shtml">Boxscore</a></em>
	</p>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	anchors := htmlutil.GetAnchors(context.Background(), doc.Find("a[href]"))
	require.Equal(t, []htmlutil.Anchor{
		{Name: "Houston Astros", Href: "/teams/HOU/2017.shtml"},
		{Name: "New York Yankees", Href: "/teams/NYY/2017.shtml"},
		{Name: "Boxscore", Href: "/boxes/NYA/NYA201705110.shtml"},
	}, anchors)
}
