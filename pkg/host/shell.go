package host

import "strings"

// thinClient is the inline client script. It captures the supported event
// categories at the document level, resolves the nearest addressable
// ancestor, forwards a JSON event frame over the websocket, and swaps the
// document body when the host answers.
const thinClient = `(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var categories = ["click", "input", "change", "submit", "mouseover", "focus", "keydown"];

  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    var root = document.getElementById("loom-root");
    if (root && frame.html) {
      root.outerHTML = frame.html;
    }
  };

  categories.forEach(function (category) {
    document.addEventListener(category, function (ev) {
      var el = ev.target && ev.target.closest ? ev.target.closest("[data-lid]") : null;
      if (!el || ws.readyState !== WebSocket.OPEN) {
        return;
      }
      if (category === "submit") {
        ev.preventDefault();
      }
      ws.send(JSON.stringify({
        node: el.getAttribute("data-lid"),
        category: category,
        value: ev.target && ev.target.value !== undefined ? String(ev.target.value) : "",
        checked: !!(ev.target && ev.target.checked)
      }));
    }, true);
  });
})();`

// pageShell wraps the serialized live tree in a minimal HTML document with
// the thin client inlined.
func pageShell(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(escapeTitle(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n<script>")
	b.WriteString(thinClient)
	b.WriteString("</script>\n</body>\n</html>\n")
	return b.String()
}

func escapeTitle(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
