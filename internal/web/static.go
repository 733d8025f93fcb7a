package web

// Embedded static assets. The stylesheet keeps the mockup legible; the
// script wires data-intent attributes to POST /grid/{id}/intent and swaps
// the returned fragment in place. Pointer-move previews during a resize
// drag stay client-side; only the release posts a committed width.
const mockviewCSS = `body { font-family: system-ui, sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
.badge, .chip, .status { display: inline-block; padding: 0.1rem 0.5rem; border-radius: 0.75rem; font-size: 0.8rem; margin-right: 0.5rem; background: #eee; }
.badge-purple { background: #e6d6f5; }
.status-green { background: #d3f0d3; }
.note { color: #666; font-style: italic; }
.grid table { border-collapse: collapse; width: 100%; table-layout: fixed; }
.grid th, .grid td { border: 1px solid #ddd; padding: 0.3rem 0.5rem; overflow: hidden; text-overflow: ellipsis; }
.grid th[data-intent="sort"] { cursor: pointer; user-select: none; }
.grid th { position: relative; background: #f7f7f7; text-align: left; }
.grid .resize-handle { position: absolute; right: 0; top: 0; bottom: 0; width: 5px; cursor: col-resize; }
.grid tr.selected { background: #eef4ff; }
.grid tr.group-header td { background: #f0f0f0; font-weight: 600; cursor: pointer; }
.grid tr.group-header.collapsed td { color: #888; }
.align-right { text-align: right; }
.align-center { text-align: center; }
.pager { margin-top: 0.5rem; display: flex; gap: 0.75rem; align-items: center; }
`

const mockviewJS = `(function () {
  function post(gridId, params) {
    var body = new URLSearchParams(params).toString();
    fetch("/grid/" + gridId + "/intent", {
      method: "POST",
      headers: { "Content-Type": "application/x-www-form-urlencoded" },
      body: body
    }).then(function (res) { return res.text(); }).then(function (html) {
      var grid = document.getElementById("grid-" + gridId);
      if (grid) grid.outerHTML = html;
    });
  }

  var drag = null;

  document.addEventListener("click", function (e) {
    var el = e.target.closest("[data-intent]");
    if (!el || el.dataset.intent === "resize") return;
    var grid = el.closest("[data-grid]");
    if (!grid) return;
    var id = grid.dataset.grid;
    switch (el.dataset.intent) {
      case "sort":
        post(id, { intent: "sort", column: el.dataset.column });
        break;
      case "select":
        post(id, { intent: "select", row: el.dataset.row });
        break;
      case "page":
        if (!el.disabled) post(id, { intent: "page", page: el.dataset.page });
        break;
      case "group-toggle":
        post(id, { intent: "group-toggle", group: el.dataset.group });
        break;
    }
  });

  document.addEventListener("pointerdown", function (e) {
    var handle = e.target.closest('[data-intent="resize"]');
    if (!handle) return;
    e.preventDefault();
    e.stopPropagation();
    var th = handle.closest("th");
    drag = {
      gridId: handle.closest("[data-grid]").dataset.grid,
      column: handle.dataset.column,
      th: th,
      startX: e.clientX,
      startWidth: th.offsetWidth
    };
  });

  document.addEventListener("pointermove", function (e) {
    if (!drag) return;
    // Transient preview: width changes locally, nothing is posted.
    drag.th.style.width = drag.startWidth + (e.clientX - drag.startX) + "px";
  });

  document.addEventListener("pointerup", function (e) {
    if (!drag) return;
    var width = drag.startWidth + (e.clientX - drag.startX);
    post(drag.gridId, { intent: "resize", column: drag.column, width: width });
    drag = null;
  });
})();
`
